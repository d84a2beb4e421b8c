package util

const (
	DraftStoreMemory = "memory"
	DraftStoreRedis  = "redis"
	DraftStoreFile   = "file"
)

const (
	ClientIDHeader = "X-Client-ID"
	ClientIDCookie = "client_id"
	LangCookie     = "lang"
)

// gin.Context 中的键
const (
	CtxClientID = "client_id"
	CtxLang     = "lang"
)

// ArchiveFilterAll 档案筛选中表示不过滤的取值
const ArchiveFilterAll = "All"
