package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"opiol_backend/internal/util"
	"opiol_backend/pkg/i18n"
	"opiol_backend/pkg/logger"
	"opiol_backend/pkg/monitoring"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBuffer     = 16
)

// 消息类型
const (
	WSTypeAsk     = "ASK"
	WSTypeMessage = "MESSAGE"
	WSTypeTyping  = "TYPING"
	WSTypeError   = "ERROR"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WSMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type wsInbound struct {
	Type string `json:"type"`
	Data struct {
		Content string `json:"content"`
	} `json:"data"`
}

// AdvisorHub 顾问对话的 WebSocket 通道：推送用户消息、输入中状态和预设回复
type AdvisorHub struct {
	Advisor    *AdvisorService
	Translator *i18n.Translator

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu    sync.Mutex
	conns map[*advisorConn]struct{}
}

type advisorConn struct {
	hub      *AdvisorHub
	conn     *websocket.Conn
	send     chan []byte
	clientID string
	lang     string
	limiter  *rate.Limiter
}

func NewAdvisorHub(advisor *AdvisorService, tr *i18n.Translator) *AdvisorHub {
	ctx, cancel := context.WithCancel(context.Background())
	return &AdvisorHub{
		Advisor:    advisor,
		Translator: tr,
		ctx:        ctx,
		cancel:     cancel,
		conns:      make(map[*advisorConn]struct{}),
	}
}

func (h *AdvisorHub) ServeWs(w http.ResponseWriter, r *http.Request, clientID, lang string) {
	if h.ctx.Err() != nil {
		http.Error(w, "advisor hub stopped", http.StatusServiceUnavailable)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Error("WebSocket upgrade failed", zap.Error(err), zap.String("client_id", clientID))
		return
	}

	c := &advisorConn{
		hub:      h,
		conn:     conn,
		send:     make(chan []byte, sendBuffer),
		clientID: clientID,
		lang:     lang,
		limiter:  rate.NewLimiter(rate.Limit(5), 10), // 每秒5条，允许突发10条
	}

	h.mu.Lock()
	h.conns[c] = struct{}{}
	h.mu.Unlock()

	h.wg.Add(2)
	go c.writePump()
	go c.readPump()
}

// Stop 关闭所有连接并等待读写协程退出
func (h *AdvisorHub) Stop() {
	h.cancel()

	h.mu.Lock()
	for c := range h.conns {
		c.conn.Close()
	}
	h.mu.Unlock()

	h.wg.Wait()
}

func (c *advisorConn) readPump() {
	defer func() {
		c.hub.mu.Lock()
		delete(c.hub.conns, c)
		c.hub.mu.Unlock()

		// send 只在本协程写入，此处关闭是安全的
		close(c.send)
		c.hub.wg.Done()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error { c.conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) && c.hub.ctx.Err() == nil {
				logger.Log.Warn("WebSocket unexpected close", zap.Error(err), zap.String("client_id", c.clientID))
			}
			return
		}

		if !c.limiter.Allow() {
			continue
		}

		var msg wsInbound
		if err := json.Unmarshal(raw, &msg); err != nil {
			continue
		}
		monitoring.AdvisorSocketMessages.WithLabelValues(msg.Type, "in").Inc()

		if msg.Type == WSTypeAsk {
			c.handleAsk(msg.Data.Content)
		}
	}
}

func (c *advisorConn) handleAsk(content string) {
	question, err := c.hub.Advisor.Post(c.clientID, content)
	if errors.Is(err, util.ErrEmptyMessage) {
		c.push(WSMessage{Type: WSTypeError, Data: map[string]interface{}{"message": c.hub.Translator.T(c.lang, i18n.MsgAdvisorEmptyMessage)}})
		return
	}
	c.push(WSMessage{Type: WSTypeMessage, Data: question})
	c.push(WSMessage{Type: WSTypeTyping, Data: map[string]interface{}{"typing": true}})

	reply, err := c.hub.Advisor.Respond(c.hub.ctx, c.clientID, question.Content)
	if err != nil {
		return
	}
	c.push(WSMessage{Type: WSTypeMessage, Data: reply})
	c.push(WSMessage{Type: WSTypeTyping, Data: map[string]interface{}{"typing": false}})
}

func (c *advisorConn) push(msg WSMessage) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return
	}
	select {
	case c.send <- payload:
		monitoring.AdvisorSocketMessages.WithLabelValues(msg.Type, "out").Inc()
	default:
		logger.Log.Warn("Advisor socket send buffer full, dropping message", zap.String("client_id", c.clientID))
	}
}

func (c *advisorConn) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
		c.hub.wg.Done()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
