// Package ws is the WS driver (SPEC_FULL.md C8): it accepts websocket
// connections, decodes COMMAND envelopes into facade calls applied at
// the next tick boundary, and streams a per-tick snapshot back to every
// connected session. The engine itself is never touched concurrently —
// Run owns it exclusively from a single goroutine, the same way the
// teacher's world actor owns *world.World from its own goroutine.
package ws

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/klauspost/compress/flate"

	"redstonesim.dev/internal/catalog"
	"redstonesim.dev/internal/engine"
	"redstonesim.dev/internal/protocol"
)

// compressThreshold is the outbound snapshot payload size, in bytes,
// above which frames are deflate-compressed before being written.
const compressThreshold = 4096

type commandEnvelope struct {
	sessionID string
	cmd       protocol.CommandMsg
	reply     chan protocol.AckMsg
}

type Server struct {
	eng    *engine.Engine
	cat    *catalog.Catalog
	tickHz int
	log    *log.Logger

	upgrader websocket.Upgrader

	inbox chan commandEnvelope

	mu       sync.Mutex
	sessions map[string]chan []byte
}

func NewServer(eng *engine.Engine, cat *catalog.Catalog, tickHz int, logger *log.Logger) *Server {
	return &Server{
		eng:    eng,
		cat:    cat,
		tickHz: tickHz,
		log:    logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  32 * 1024,
			WriteBufferSize: 32 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // dev default
		},
		inbox:    make(chan commandEnvelope, 256),
		sessions: make(map[string]chan []byte),
	}
}

// Run owns the engine for the process lifetime: it drains queued
// commands and calls Tick exactly once per tick interval, broadcasting
// a snapshot afterward. It returns when ctx is canceled.
func (s *Server) Run(ctx context.Context) {
	interval := time.Second / time.Duration(s.tickHz)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var pending []commandEnvelope
	for {
		select {
		case <-ctx.Done():
			return
		case env := <-s.inbox:
			pending = append(pending, env)
		case <-ticker.C:
			for _, env := range pending {
				ack := s.apply(env.cmd)
				select {
				case env.reply <- ack:
				default:
				}
			}
			pending = pending[:0]
			s.eng.Tick()
			s.broadcastSnapshot()
		}
	}
}

func (s *Server) apply(cmd protocol.CommandMsg) protocol.AckMsg {
	ack := protocol.AckMsg{
		Type:            protocol.TypeAck,
		ProtocolVersion: protocol.Version,
		AckFor:          cmd.RequestID,
		ServerTick:      s.eng.CurrentTick(),
	}

	switch cmd.Op {
	case protocol.OpCreateBlock:
		args := cmd.CreateBlock
		if args == nil {
			return reject(ack, protocol.ErrProtoBadRequest, "missing create_block args")
		}
		if _, ok := s.cat.Defs[args.ID]; !ok {
			return reject(ack, protocol.ErrUnknownBlockID, args.ID)
		}
		_, err, ok := s.eng.CreateBlockByID(args.ID, args.X, args.Y)
		if !ok {
			return reject(ack, protocol.ErrUnknownBlockID, args.ID)
		}
		if err != nil {
			return reject(ack, codeFor(err), err.Error())
		}
	case protocol.OpRemoveBlock:
		if cmd.RemoveBlock == nil {
			return reject(ack, protocol.ErrProtoBadRequest, "missing remove_block args")
		}
		s.eng.RemoveBlock(cmd.RemoveBlock.X, cmd.RemoveBlock.Y)
	case protocol.OpRotateBlock:
		if cmd.RotateBlock == nil {
			return reject(ack, protocol.ErrProtoBadRequest, "missing rotate_block args")
		}
		s.eng.RotateBlock(cmd.RotateBlock.X, cmd.RotateBlock.Y)
	case protocol.OpInteract:
		if cmd.Interact == nil {
			return reject(ack, protocol.ErrProtoBadRequest, "missing interact args")
		}
		s.eng.Interact(cmd.Interact.X, cmd.Interact.Y)
	case protocol.OpConfigureRepeaterDelay:
		if cmd.ConfigureRepeaterDelay == nil {
			return reject(ack, protocol.ErrProtoBadRequest, "missing configure_repeater_delay args")
		}
		s.eng.ConfigureRepeaterDelay(cmd.ConfigureRepeaterDelay.X, cmd.ConfigureRepeaterDelay.Y)
	case protocol.OpConfigureComparatorMode:
		if cmd.ConfigureComparatorMode == nil {
			return reject(ack, protocol.ErrProtoBadRequest, "missing configure_comparator_mode args")
		}
		s.eng.ConfigureComparatorMode(cmd.ConfigureComparatorMode.X, cmd.ConfigureComparatorMode.Y)
	case protocol.OpQuery, protocol.OpTick:
		// No-op here: query results ride the per-tick snapshot broadcast.
	default:
		return reject(ack, protocol.ErrUnknownOp, cmd.Op)
	}

	ack.Accepted = true
	return ack
}

func reject(ack protocol.AckMsg, code, msg string) protocol.AckMsg {
	ack.Accepted = false
	ack.Code = code
	ack.Message = msg
	return ack
}

func codeFor(err error) string {
	switch err {
	case engine.ErrOccupied:
		return protocol.ErrOccupied
	case engine.ErrOutOfBounds:
		return protocol.ErrOutOfBounds
	default:
		return protocol.ErrInternal
	}
}

func (s *Server) broadcastSnapshot() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.sessions) == 0 {
		return
	}

	blocks := s.eng.AllBlocks()
	views := make([]protocol.BlockView, 0, len(blocks))
	for _, b := range blocks {
		views = append(views, protocol.BlockView{
			X:        b.Pos.X,
			Y:        b.Pos.Y,
			ID:       b.ExtID,
			Powered:  b.Visual.Powered,
			Power:    b.Visual.Power,
			Rotation: uint8(b.Rotation),
			Extended: b.Visual.Extended,
		})
	}
	snap := protocol.SnapshotMsg{
		Type:            protocol.TypeSnapshot,
		ProtocolVersion: protocol.Version,
		ServerTick:      s.eng.CurrentTick(),
		Blocks:          views,
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		s.log.Printf("marshal snapshot: %v", err)
		return
	}
	if len(raw) > compressThreshold {
		if compressed, ok := deflate(raw); ok {
			raw = compressed
		}
	}
	for id, out := range s.sessions {
		select {
		case out <- raw:
		default:
			s.log.Printf("session %s: outbound queue full, dropping snapshot frame", id)
		}
	}
}

func deflate(raw []byte) ([]byte, bool) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.BestSpeed)
	if err != nil {
		return nil, false
	}
	if _, err := w.Write(raw); err != nil {
		return nil, false
	}
	if err := w.Close(); err != nil {
		return nil, false
	}
	return buf.Bytes(), true
}

// Handler upgrades an HTTP request to a websocket connection, performs
// the HELLO/WELCOME handshake, then relays COMMAND envelopes into the
// shared inbox until the connection closes.
func (s *Server) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		sessionID, out := s.handshake(conn)
		if sessionID == "" {
			return
		}
		s.mu.Lock()
		s.sessions[sessionID] = out
		s.mu.Unlock()
		s.log.Printf("session %s: connected", sessionID)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case b, ok := <-out:
					if !ok {
						return
					}
					_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
					if err := conn.WriteMessage(websocket.BinaryMessage, b); err != nil {
						cancel()
						return
					}
				}
			}
		}()

		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				cancel()
				break
			}
			base, err := protocol.DecodeBase(msg)
			if err != nil || base.Type != protocol.TypeCommand {
				continue
			}
			var cmd protocol.CommandMsg
			if err := json.Unmarshal(msg, &cmd); err != nil {
				continue
			}
			reply := make(chan protocol.AckMsg, 1)
			s.inbox <- commandEnvelope{sessionID: sessionID, cmd: cmd, reply: reply}
			go func() {
				ack := <-reply
				b, err := json.Marshal(ack)
				if err != nil {
					return
				}
				select {
				case out <- b:
				default:
				}
			}()
		}

		s.mu.Lock()
		delete(s.sessions, sessionID)
		s.mu.Unlock()
		s.log.Printf("session %s: disconnected", sessionID)
	}
}

func (s *Server) handshake(conn *websocket.Conn) (sessionID string, out chan []byte) {
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		return "", nil
	}
	base, err := protocol.DecodeBase(msg)
	if err != nil || base.Type != protocol.TypeHello {
		_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "expected HELLO"), time.Now().Add(time.Second))
		return "", nil
	}
	var hello protocol.HelloMsg
	if err := json.Unmarshal(msg, &hello); err != nil {
		return "", nil
	}

	sessionID = uuid.NewString()
	out = make(chan []byte, 32)

	welcome := protocol.WelcomeMsg{
		Type:            protocol.TypeWelcome,
		ProtocolVersion: protocol.Version,
		SessionID:       sessionID,
		WorldParams: protocol.WorldParams{
			TickRateHz: s.tickHz,
			Width:      s.eng.Width(),
			Height:     s.eng.Height(),
		},
		BlockPalette:  s.cat.Palette,
		PaletteDigest: s.cat.Digest,
	}
	if err := writeJSON(conn, welcome); err != nil {
		return "", nil
	}
	return sessionID, out
}

func writeJSON(conn *websocket.Conn, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	return conn.WriteMessage(websocket.TextMessage, b)
}
