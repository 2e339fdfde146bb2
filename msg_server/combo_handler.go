package msg_server

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/LeaguesOfHoleHoleShoes/HoleCombo/log"
	"github.com/LeaguesOfHoleHoleShoes/HoleCombo/metrics"
	"github.com/LeaguesOfHoleHoleShoes/HoleCombo/texas/cards"
	"github.com/LeaguesOfHoleHoleShoes/HoleCombo/texas/hand_processor"
	"github.com/LeaguesOfHoleHoleShoes/HoleCombo/util"
)

// msg type
const (
	MsgTypeEvalReq     = 0x1
	MsgTypeEvalResp    = 0x2
	MsgTypeErrorResp   = 0x3
	MsgTypeCompareReq  = 0x4
	MsgTypeCompareResp = 0x5
)

type EvalReq struct {
	Cards []string `json:"cards"`
}

type EvalResp struct {
	Combo hand_processor.Combo `json:"combo"`
}

type CompareReq struct {
	A []string `json:"a"`
	B []string `json:"b"`
}

type CompareResp struct {
	// 1: a wins, -1: b wins, 0: tie
	Result int                  `json:"result"`
	A      hand_processor.Combo `json:"a"`
	B      hand_processor.Combo `json:"b"`
}

type ErrorResp struct {
	Error string `json:"error"`
}

type sender interface {
	Send(id string, msgType int, msgID int64, msg []byte)
}

// ComboHandler answers eval and compare requests. Bad hands get an error response,
// only undecodable frames or unknown msg types drop the connection.
type ComboHandler struct {
	sender    sender
	collector *metrics.Collector
	matcher   hand_processor.HMatcher
}

func NewComboHandler(collector *metrics.Collector) *ComboHandler {
	return &ComboHandler{collector: collector}
}

// Bind sets where responses go, normally the WsServer that owns this handler.
func (h *ComboHandler) Bind(s sender) {
	h.sender = s
}

func (h *ComboHandler) Handle(peerID string, msgType int, msgID int64, msg []byte) error {
	switch msgType {
	case MsgTypeEvalReq:
		var req EvalReq
		if err := util.ParseJsonFromBytes(msg, &req); err != nil {
			return err
		}
		combo, err := h.detect(req.Cards)
		h.collector.ObserveRequest("eval", err == nil)
		if err != nil {
			h.replyErr(peerID, msgID, err)
			return nil
		}
		h.reply(peerID, MsgTypeEvalResp, msgID, EvalResp{Combo: combo})

	case MsgTypeCompareReq:
		var req CompareReq
		if err := util.ParseJsonFromBytes(msg, &req); err != nil {
			return err
		}
		a, err := h.detect(req.A)
		if err == nil {
			var b hand_processor.Combo
			if b, err = h.detect(req.B); err == nil {
				h.collector.ObserveRequest("compare", true)
				h.reply(peerID, MsgTypeCompareResp, msgID, CompareResp{Result: h.matcher.Cmp(a, b), A: a, B: b})
				return nil
			}
		}
		h.collector.ObserveRequest("compare", false)
		h.replyErr(peerID, msgID, err)

	default:
		return fmt.Errorf("unknown msg type %v", msgType)
	}
	return nil
}

func (h *ComboHandler) detect(strs []string) (hand_processor.Combo, error) {
	cs, err := cards.ParseCardList(strs)
	if err != nil {
		return hand_processor.Combo{}, err
	}
	if err := hand_processor.CheckCards(cs); err != nil {
		return hand_processor.Combo{}, err
	}
	start := time.Now()
	combo := hand_processor.DetectCombo(cs)
	h.collector.ObserveCombo(combo.Rank.String(), time.Since(start))
	return combo, nil
}

func (h *ComboHandler) reply(peerID string, msgType int, msgID int64, body interface{}) {
	b, err := util.StringifyJsonToBytesWithErr(body)
	if err != nil {
		log.L.Error("marshal response failed", zap.Int("msg type", msgType), zap.Error(err))
		return
	}
	h.sender.Send(peerID, msgType, msgID, b)
}

func (h *ComboHandler) replyErr(peerID string, msgID int64, err error) {
	log.L.Debug("bad request", zap.String("peer", peerID), zap.Int64("msg id", msgID), zap.Error(err))
	h.reply(peerID, MsgTypeErrorResp, msgID, ErrorResp{Error: err.Error()})
}
