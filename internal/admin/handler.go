// AngelaMos | 2026
// handler.go

package admin

import (
	"context"
	"errors"
	"net/http"
	"runtime"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/carterperez-dev/templates/inventory-api/internal/core"
	"github.com/carterperez-dev/templates/inventory-api/internal/ledger"
)

type LedgerStats interface {
	Counts() ledger.Counts
	Counters() ledger.Counters
	LowStockThreshold() int
}

type Handler struct {
	ledger     LedgerStats
	redisStats func() *redis.PoolStats
	redisPing  func(ctx context.Context) error
}

type HandlerConfig struct {
	Ledger     LedgerStats
	RedisStats func() *redis.PoolStats
	RedisPing  func(ctx context.Context) error
}

func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{
		ledger:     cfg.Ledger,
		redisStats: cfg.RedisStats,
		redisPing:  cfg.RedisPing,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Get("/stats", h.GetSystemStats)
		r.Get("/stats/ledger", h.GetLedgerStats)
		r.Get("/stats/redis", h.GetRedisStats)
		r.Get("/stats/runtime", h.GetRuntimeStats)
	})
}

func (h *Handler) GetSystemStats(w http.ResponseWriter, r *http.Request) {
	redisStatus := RedisStatus{Enabled: h.redisPing != nil, Healthy: true}
	if h.redisPing != nil {
		err := h.redisPing(r.Context())
		switch {
		case errors.Is(err, core.ErrRedisDisabled):
			redisStatus.Enabled = false
		case err != nil:
			redisStatus.Healthy = false
		}
	}
	redisStatus.Stats = h.getRedisStats()

	core.OK(w, SystemStatsResponse{
		Ledger:  h.getLedgerStats(),
		Redis:   redisStatus,
		Runtime: readRuntimeStats(),
	})
}

func (h *Handler) GetLedgerStats(w http.ResponseWriter, r *http.Request) {
	core.OK(w, h.getLedgerStats())
}

func (h *Handler) GetRedisStats(w http.ResponseWriter, r *http.Request) {
	core.OK(w, h.getRedisStats())
}

func (h *Handler) GetRuntimeStats(w http.ResponseWriter, r *http.Request) {
	core.OK(w, readRuntimeStats())
}

func (h *Handler) getLedgerStats() LedgerStatsResponse {
	counts := h.ledger.Counts()
	counters := h.ledger.Counters()

	return LedgerStatsResponse{
		Records: RecordCounts{
			Users:    counts.Users,
			Products: counts.Products,
			Orders:   counts.Orders,
			Notes:    counts.Notes,
		},
		LastIDs: LastIDs{
			User:    int64(counters.Users),
			Product: int64(counters.Products),
			Order:   int64(counters.Orders),
			Note:    int64(counters.Notes),
		},
		LowStockThreshold: h.ledger.LowStockThreshold(),
	}
}

func (h *Handler) getRedisStats() *RedisPoolStats {
	if h.redisStats == nil {
		return nil
	}

	stats := h.redisStats()
	if stats == nil {
		return nil
	}

	return &RedisPoolStats{
		Hits:       stats.Hits,
		Misses:     stats.Misses,
		Timeouts:   stats.Timeouts,
		TotalConns: stats.TotalConns,
		IdleConns:  stats.IdleConns,
		StaleConns: stats.StaleConns,
	}
}

func readRuntimeStats() RuntimeStats {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return RuntimeStats{
		GoVersion:    runtime.Version(),
		NumGoroutine: runtime.NumGoroutine(),
		NumCPU:       runtime.NumCPU(),
		MemAlloc:     memStats.Alloc,
		MemSys:       memStats.Sys,
		NumGC:        memStats.NumGC,
	}
}

type SystemStatsResponse struct {
	Ledger  LedgerStatsResponse `json:"ledger"`
	Redis   RedisStatus         `json:"redis"`
	Runtime RuntimeStats        `json:"runtime"`
}

type LedgerStatsResponse struct {
	Records           RecordCounts `json:"records"`
	LastIDs           LastIDs      `json:"last_ids"`
	LowStockThreshold int          `json:"low_stock_threshold"`
}

type RecordCounts struct {
	Users    int `json:"users"`
	Products int `json:"products"`
	Orders   int `json:"orders"`
	Notes    int `json:"notes"`
}

type LastIDs struct {
	User    int64 `json:"user"`
	Product int64 `json:"product"`
	Order   int64 `json:"order"`
	Note    int64 `json:"note"`
}

type RedisStatus struct {
	Enabled bool            `json:"enabled"`
	Healthy bool            `json:"healthy"`
	Stats   *RedisPoolStats `json:"stats,omitempty"`
}

type RedisPoolStats struct {
	Hits       uint32 `json:"hits"`
	Misses     uint32 `json:"misses"`
	Timeouts   uint32 `json:"timeouts"`
	TotalConns uint32 `json:"total_conns"`
	IdleConns  uint32 `json:"idle_conns"`
	StaleConns uint32 `json:"stale_conns"`
}

type RuntimeStats struct {
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutine"`
	NumCPU       int    `json:"num_cpu"`
	MemAlloc     uint64 `json:"mem_alloc_bytes"`
	MemSys       uint64 `json:"mem_sys_bytes"`
	NumGC        uint32 `json:"num_gc"`
}
