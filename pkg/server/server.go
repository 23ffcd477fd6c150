// Package server implements msgpack IPC for swipe-trace prediction.
package server

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/kaelnor/swypath/internal/logger"
	"github.com/kaelnor/swypath/pkg/config"
	"github.com/kaelnor/swypath/pkg/predictor"
)

// Server handles prediction requests and runtime config updates over
// msgpack-framed stdin/stdout, one request per round trip.
type Server struct {
	predictor  *predictor.Predictor
	cfg        *config.Config
	configPath string
	log        *log.Logger

	decoder    *msgpack.Decoder
	writeMutex sync.Mutex
}

// NewServer creates a server around a constructed Predictor. configPath
// may be empty, in which case config requests report the in-memory
// config without persisting changes. log may be nil to use a default
// "server"-prefixed logger; cmd/swypath passes a more verbose one under
// --v via logger.NewWithConfig.
func NewServer(p *predictor.Predictor, cfg *config.Config, configPath string, log *log.Logger) *Server {
	if log == nil {
		log = logger.Default("server")
	}
	decoder := msgpack.NewDecoder(os.Stdin)
	decoder.UseLooseInterfaceDecoding(true)
	return &Server{
		predictor:  p,
		cfg:        cfg,
		configPath: configPath,
		log:        log,
		decoder:    decoder,
	}
}

// Start reads requests from stdin until EOF. Any other error, including a
// decode error, is logged at debug level and the loop reads the next request.
func (s *Server) Start() error {
	s.log.Debug("starting msgpack prediction server")
	for {
		if err := s.processRequest(); err != nil {
			if err == io.EOF {
				s.log.Debug("client disconnected")
				return nil
			}
			s.log.Debugf("request error: %v", err)
			continue
		}
	}
}

func (s *Server) processRequest() error {
	var raw map[string]interface{}
	if err := s.decoder.Decode(&raw); err != nil {
		return err
	}

	if action, ok := raw["action"]; ok {
		actionStr, _ := action.(string)
		return s.processConfigRequest(raw, actionStr)
	}

	return s.processPredictRequest(raw)
}

func (s *Server) processPredictRequest(raw map[string]interface{}) error {
	var req PredictRequest
	if id, ok := raw["id"].(string); ok {
		req.ID = id
	}
	if trace, ok := raw["trace"].(string); ok {
		req.Trace = trace
	}
	if k, ok := raw["k"].(int64); ok {
		req.K = int(k)
	} else if kf, ok := raw["k"].(float64); ok {
		req.K = int(kf)
	}

	if req.Trace == "" {
		return s.sendError(req.ID, "empty trace", 400)
	}

	limit := req.K
	if limit <= 0 {
		limit = s.cfg.Server.DefaultLimit
	}
	if limit > s.cfg.Server.MaxLimit {
		limit = s.cfg.Server.MaxLimit
	}

	start := time.Now()
	predictions := s.predictor.Predict(req.Trace, limit)
	elapsed := time.Since(start)

	items := make([]PredictionItem, len(predictions))
	for i, p := range predictions {
		items[i] = PredictionItem{Word: p.Word, Score: p.Score, Freq: p.Freq}
	}

	return s.sendResponse(&PredictResponse{
		ID:          req.ID,
		Predictions: items,
		Count:       len(items),
		TimeTaken:   elapsed.Microseconds(),
	})
}

func (s *Server) processConfigRequest(raw map[string]interface{}, action string) error {
	var id string
	if rawID, ok := raw["id"]; ok {
		id, _ = rawID.(string)
	}

	switch action {
	case "get_limits":
		return s.sendResponse(&ConfigResponse{
			ID:           id,
			Status:       "ok",
			MaxLimit:     s.cfg.Server.MaxLimit,
			DefaultLimit: s.cfg.Server.DefaultLimit,
			EnableCache:  s.cfg.Server.EnableCache,
		})

	case "set_max_limit":
		maxLimit, ok := raw["max_limit"]
		if !ok {
			return s.sendResponse(&ConfigResponse{ID: id, Status: "error", Error: "max_limit required"})
		}
		var n int
		switch v := maxLimit.(type) {
		case int:
			n = v
		case int64:
			n = int(v)
		case float64:
			n = int(v)
		default:
			return s.sendResponse(&ConfigResponse{ID: id, Status: "error", Error: fmt.Sprintf("invalid max_limit type: %T", v)})
		}
		if s.configPath == "" {
			s.cfg.Server.MaxLimit = n
		} else if err := s.cfg.Update(s.configPath, &n, nil); err != nil {
			return s.sendResponse(&ConfigResponse{ID: id, Status: "error", Error: err.Error()})
		}
		return s.sendResponse(&ConfigResponse{ID: id, Status: "ok", MaxLimit: s.cfg.Server.MaxLimit})

	case "set_cache":
		enabled, ok := raw["enabled"].(bool)
		if !ok {
			return s.sendResponse(&ConfigResponse{ID: id, Status: "error", Error: "enabled required"})
		}
		if s.configPath == "" {
			s.cfg.Server.EnableCache = enabled
		} else if err := s.cfg.Update(s.configPath, nil, &enabled); err != nil {
			return s.sendResponse(&ConfigResponse{ID: id, Status: "error", Error: err.Error()})
		}
		return s.sendResponse(&ConfigResponse{ID: id, Status: "ok", EnableCache: s.cfg.Server.EnableCache})

	default:
		return s.sendResponse(&ConfigResponse{ID: id, Status: "error", Error: fmt.Sprintf("unknown action: %s", action)})
	}
}

// sendResponse encodes to a buffer first so a partial write can never
// reach stdout, then flushes it atomically under writeMutex.
func (s *Server) sendResponse(response any) error {
	s.writeMutex.Lock()
	defer s.writeMutex.Unlock()

	var buf bytes.Buffer
	if err := msgpack.NewEncoder(&buf).Encode(response); err != nil {
		return fmt.Errorf("server: encoding response: %w", err)
	}
	if _, err := os.Stdout.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("server: writing response: %w", err)
	}
	return nil
}

func (s *Server) sendError(id, message string, code int) error {
	return s.sendResponse(&PredictError{ID: id, Error: message, Code: code})
}
