package server

import (
	"encoding/json"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"potentialflow/calculator"
	"potentialflow/model"
)

const msgTypeError = "error"

var ErrGridTooLarge = errors.New("server: grid exceeds MaxGridPoints")

// Hub 每个连接一个，handleRequest 负责计算，handleResponse 独占连接的写操作
type Hub struct {
	conn          *websocket.Conn
	maxGridPoints int
	// request
	msg chan model.Msg
	// response
	reply chan model.Msg
	done  chan struct{}
}

func NewHub(conn *websocket.Conn, maxGridPoints int) *Hub {
	return &Hub{
		conn:          conn,
		maxGridPoints: maxGridPoints,
		msg:           make(chan model.Msg, 10),
		reply:         make(chan model.Msg, 10),
		done:          make(chan struct{}),
	}
}

func (h *Hub) handleResponse() {
	for {
		select {
		case reply := <-h.reply:
			if err := h.conn.WriteJSON(&reply); err != nil {
				log.Println("err: ", err)
			}
		case <-h.done:
			return
		}
	}
}

func (h *Hub) handleRequest() {
	for {
		select {
		case msg := <-h.msg:
			select {
			case h.reply <- h.handle(msg):
			case <-h.done:
				return
			}
		case <-h.done:
			return
		}
	}
}

func (h *Hub) stop() {
	close(h.done)
}

// handle 计算一条请求并生成回复，出错时回复 error 类型的消息
func (h *Hub) handle(msg model.Msg) model.Msg {
	switch msg.Type {
	case calculator.OpStreamFunction, calculator.OpVelocity:
	default:
		return errorMsg(errors.Errorf("no such type: %q", msg.Type))
	}

	var req model.FlowReq
	if err := json.Unmarshal([]byte(msg.Content), &req); err != nil {
		return errorMsg(errors.Wrap(err, "decode request"))
	}
	n := gridPoints(req.X)
	if ny := gridPoints(req.Y); ny > n {
		n = ny
	}
	if n > h.maxGridPoints {
		return errorMsg(errors.Wrapf(ErrGridTooLarge, "%d > %d", n, h.maxGridPoints))
	}

	resp, err := calculator.Evaluate(msg.Type, req)
	if err != nil {
		return errorMsg(err)
	}
	data, err := json.Marshal(&resp)
	if err != nil {
		return errorMsg(errors.Wrap(err, "encode response"))
	}
	log.WithFields(log.Fields{
		"type":     msg.Type,
		"kind":     req.Kind,
		"strength": req.Strength,
		"rows":     resp.Rows,
		"cols":     resp.Cols,
	}).Info("流场计算完成")
	return model.Msg{
		Type:    msg.Type,
		Content: string(data),
	}
}

func errorMsg(err error) model.Msg {
	log.WithError(err).Warn("请求处理失败")
	return model.Msg{
		Type:    msgTypeError,
		Content: err.Error(),
	}
}

// readLimit 单条消息的字节上限，X、Y 两个网格每个数值按 32 字节估算
func readLimit(maxGridPoints int) int64 {
	return int64(maxGridPoints)*2*32 + 4096
}

func gridPoints(rows [][]float64) int {
	n := 0
	for _, row := range rows {
		n += len(row)
	}
	return n
}
