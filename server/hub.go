package server

import (
	"encoding/json"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/Andre-4949/y-plus-estimation/calculator"
	"github.com/Andre-4949/y-plus-estimation/deque"
	"github.com/Andre-4949/y-plus-estimation/fluid"
	"github.com/Andre-4949/y-plus-estimation/model"
)

// Hub serves one client connection: requests come in on msg, replies go out
// on reply, and every successful estimation is recorded in history.
type Hub struct {
	c       *calculator.Calculator
	conn    *websocket.Conn
	history *deque.Deque

	// request
	msg chan model.Msg
	// response
	reply chan model.Msg
}

func NewHub() *Hub {
	return &Hub{
		c:       calculator.NewCalculator(),
		history: deque.New(calculator.Cfg().HistorySize),
		msg:     make(chan model.Msg, 10),
		reply:   make(chan model.Msg, 10),
	}
}

func (h *Hub) handleResponse() {
	for reply := range h.reply {
		if err := h.conn.WriteJSON(&reply); err != nil {
			log.Error("write failed: ", err)
		}
	}
}

func (h *Hub) handleRequest() {
	for msg := range h.msg {
		h.reply <- h.process(msg)
	}
	close(h.reply)
}

// process maps one request message to its reply.
func (h *Hub) process(msg model.Msg) model.Msg {
	switch msg.Type {
	case "calc":
		var cond model.Conditions
		if err := json.Unmarshal([]byte(msg.Content), &cond); err != nil {
			return errMsg("bad conditions payload: " + err.Error())
		}
		res, err := h.c.Estimate(cond)
		if err != nil {
			return errMsg(err.Error())
		}
		h.history.AddLast(*res)
		return jsonMsg("result", res)
	case "history":
		return jsonMsg("history", h.history.Snapshot())
	case "fluids":
		return jsonMsg("fluids", fluid.All())
	default:
		log.Warn("no such type: ", msg.Type)
		return errMsg("no such type: " + msg.Type)
	}
}

func jsonMsg(typ string, v interface{}) model.Msg {
	data, err := json.Marshal(v)
	if err != nil {
		return errMsg("encode failed: " + err.Error())
	}
	return model.Msg{Type: typ, Content: string(data)}
}

func errMsg(content string) model.Msg {
	return model.Msg{Type: "error", Content: content}
}
