package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"potentialflow/model"
)

type Server struct {
	cfg      Config
	upgrader websocket.Upgrader
}

func NewServer(cfg Config, upgrader websocket.Upgrader) *Server {
	return &Server{
		cfg:      cfg,
		upgrader: upgrader,
	}
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(readLimit(s.cfg.MaxGridPoints))

	hub := NewHub(conn, s.cfg.MaxGridPoints)
	defer hub.stop()
	go hub.handleRequest()
	go hub.handleResponse()
	log.WithField("remote", conn.RemoteAddr().String()).Info("连接建立")
	for {
		var msg model.Msg
		if err := conn.ReadJSON(&msg); err != nil {
			log.WithField("remote", conn.RemoteAddr().String()).Info("连接断开: ", err)
			return
		}
		hub.msg <- msg
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWs)
	return mux
}

func (s *Server) Serve() error {
	log.WithField("addr", s.cfg.Addr).Info("服务启动")
	return http.ListenAndServe(s.cfg.Addr, s.Handler())
}
