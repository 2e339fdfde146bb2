package msg_server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/LeaguesOfHoleHoleShoes/HoleCombo/log"
)

var upgrader = websocket.Upgrader{} // use default options

const (
	sendMsgChanCache = 50
	maxPeerCount     = 1000

	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 1024
)

type msgHandler interface {
	Handle(peerID string, msgType int, msgID int64, msg []byte) error
}

func NewWsServer(port int, msgHandler msgHandler) *WsServer {
	return &WsServer{
		port:        port,
		msgHandler:  msgHandler,
		peerSet:     newWsPeerSet(),
		sendMsgChan: make(chan *cMsg, sendMsgChanCache),
		stopChan:    make(chan struct{}),
	}
}

type WsServer struct {
	port int

	msgHandler msgHandler

	peerSet *wsPeerSet
	// peers get a fresh id per connection
	lastPeerID int64

	sendMsgChan chan *cMsg
	loopOnce    sync.Once
	stopOnce    sync.Once
	stopChan    chan struct{}

	httpServer *http.Server
}

type cMsg struct {
	msgID   int64
	peerID  string
	msgType int
	content []byte
	// ping frames carry no body
	ping bool
}

// Handler serves the websocket endpoint on /msg. The send loop starts with the first call.
func (s *WsServer) Handler() http.Handler {
	s.loopOnce.Do(func() { go s.loop() })
	mux := http.NewServeMux()
	mux.HandleFunc("/msg", s.handlePeer)
	return mux
}

// Run blocks until Stop is called or the listener fails.
func (s *WsServer) Run() error {
	s.httpServer = &http.Server{Addr: fmt.Sprintf(":%v", s.port), Handler: s.Handler()}
	log.L.Info("msg server listening", zap.Int("port", s.port))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *WsServer) Stop(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.stopChan) })
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func (s *WsServer) loop() {
	for {
		select {
		case tmp := <-s.sendMsgChan:
			s.send(tmp)
		case <-s.stopChan:
			return
		}
	}
}

func (s *WsServer) handlePeer(w http.ResponseWriter, r *http.Request) {
	log.L.Debug("receive new peer", zap.String("remote addr", r.RemoteAddr))
	if count := s.peerSet.count(); count >= maxPeerCount {
		log.L.Warn("can't receive new peer, too many peers", zap.Int64("cur count", count), zap.Int("max count", maxPeerCount))
		http.Error(w, "too many peers", http.StatusServiceUnavailable)
		return
	}

	c, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer c.Close()

	c.SetReadLimit(maxMessageSize)
	peerID := strconv.FormatInt(atomic.AddInt64(&s.lastPeerID, 1), 10)

	np := newWsPeer(peerID, c)
	s.peerSet.addPeer(np)
	defer s.peerSet.removePeer(peerID)
	np.start()

	c.SetReadDeadline(time.Now().Add(pongWait))
	c.SetPongHandler(func(string) error {
		c.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			log.L.Debug("read msg failed", zap.String("peer", peerID), zap.Error(err))
			return
		}
		if mt != websocket.BinaryMessage {
			log.L.Debug("receive invalid msg", zap.Int("msg type", mt))
			return
		}
		msgType, mID, msgB := UnWrapMsg(message)
		if err = s.msgHandler.Handle(peerID, msgType, mID, msgB); err != nil {
			log.L.Error("handle msg failed", zap.String("peer", peerID), zap.Error(err))
			return
		}
	}
}

func (s *WsServer) Send(id string, msgType int, msgID int64, msg []byte) {
	select {
	case s.sendMsgChan <- &cMsg{msgID: msgID, peerID: id, msgType: msgType, content: msg}:
	case <-s.stopChan:
	}
}

func (s *WsServer) send(msg *cMsg) {
	p := s.peerSet.getPeer(msg.peerID)
	if p == nil {
		log.L.Warn("can't find peer in peer set, msg not send", zap.String("peer", msg.peerID))
		return
	}
	p.send(msg)
}

func newWsPeerSet() *wsPeerSet {
	return &wsPeerSet{}
}

type wsPeerSet struct {
	// key peer id
	peers     sync.Map
	peerCount int64
}

func (ps *wsPeerSet) count() int64 {
	return atomic.LoadInt64(&ps.peerCount)
}

func (ps *wsPeerSet) getPeer(id string) *wsPeer {
	if p, ok := ps.peers.Load(id); ok {
		return p.(*wsPeer)
	}
	return nil
}

func (ps *wsPeerSet) removePeer(id string) {
	if p := ps.getPeer(id); p != nil {
		log.L.Debug("remove peer", zap.String("peer", id))
		p.stop()
		ps.peers.Delete(id)
		atomic.AddInt64(&ps.peerCount, -1)
	}
}

func (ps *wsPeerSet) addPeer(p *wsPeer) {
	atomic.AddInt64(&ps.peerCount, 1)
	ps.peers.Store(p.id, p)
}

func newWsPeer(id string, conn *websocket.Conn) *wsPeer {
	return &wsPeer{
		id: id, conn: conn,
		sendChan: make(chan *cMsg, sendMsgChanCache),
		stopChan: make(chan struct{}),
	}
}

type wsPeer struct {
	id       string
	conn     *websocket.Conn
	sendChan chan *cMsg
	stopChan chan struct{}
	stopOnce sync.Once
}

func (p *wsPeer) start() {
	go p.loop()
}

// close stop chan 后会调用conn.close
func (p *wsPeer) stop() {
	p.stopOnce.Do(func() { close(p.stopChan) })
}

func (p *wsPeer) loop() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		p.conn.Close()
	}()
	for {
		select {
		case msg := <-p.sendChan:
			if err := p.doSend(msg); err != nil {
				log.L.Debug("send msg failed", zap.String("peer", p.id), zap.Error(err))
				return
			}

		case <-ticker.C:
			if err := p.doSend(&cMsg{ping: true}); err != nil {
				return
			}

		case <-p.stopChan:
			log.L.Debug("peer loop returned", zap.String("peer", p.id))
			return
		}
	}
}

func (p *wsPeer) send(msg *cMsg) {
	select {
	case p.sendChan <- msg:
	default:
		log.L.Warn("can't send msg to client", zap.String("peer", p.id), zap.Int("send chan len", len(p.sendChan)))
	}
}

func (p *wsPeer) doSend(msg *cMsg) error {
	p.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if msg.ping {
		return p.conn.WriteMessage(websocket.PingMessage, nil)
	}
	return p.conn.WriteMessage(websocket.BinaryMessage, WrapMsg(msg.msgType, msg.msgID, msg.content))
}
