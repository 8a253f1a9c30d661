// Package connmonitor tracks per-session liveness across all auctions. It
// runs on its own timer, mutates only Session rows, and never takes a
// per-auction bidding lock. Timeouts are evaluated by timestamp comparison,
// never by sleeping.
package connmonitor

import (
	"context"
	"fmt"
	"time"

	model "auction-draft/internal/models"
	"auction-draft/internal/repository"
	"auction-draft/utils"
)

const (
	DefaultIdleTimeout   = 10 * time.Minute
	DefaultZombieTimeout = 30 * time.Minute
)

// Monitor owns session liveness. Idle sessions are marked disconnected and
// their connection handle cleared; zombies (idle far beyond the normal
// threshold) are reported separately but cleaned identically.
type Monitor struct {
	repo          repository.AuctionDB
	idleTimeout   time.Duration
	zombieTimeout time.Duration
	now           func() time.Time
}

// NewMonitor creates a new Monitor instance. Non-positive timeouts fall back
// to the defaults.
func NewMonitor(repo repository.AuctionDB, idleTimeout, zombieTimeout time.Duration) *Monitor {
	if idleTimeout <= 0 {
		idleTimeout = DefaultIdleTimeout
	}
	if zombieTimeout <= 0 {
		zombieTimeout = DefaultZombieTimeout
	}
	return &Monitor{
		repo:          repo,
		idleTimeout:   idleTimeout,
		zombieTimeout: zombieTimeout,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// CleanupResult summarizes one cleanup pass.
type CleanupResult struct {
	Cleaned      int `json:"cleaned"`
	ZombiesFound int `json:"zombies_found"`
}

// AuctionSessionStats is the per-auction slice of the connection statistics.
type AuctionSessionStats struct {
	Total     int `json:"total"`
	Connected int `json:"connected"`
}

// Stats is the monitor's aggregate view, consumed by the external capacity
// manager deciding whether the backing resource can be released.
type Stats struct {
	Total              int                            `json:"total"`
	Connected          int                            `json:"connected"`
	Idle               int                            `json:"idle"`
	Zombie             int                            `json:"zombie"`
	CanReleaseResource bool                           `json:"can_release_resource"`
	PerAuction         map[string]AuctionSessionStats `json:"per_auction"`
}

// Track registers (or replaces) a participant's session as connected now.
func (m *Monitor) Track(sessionID, auctionID, participantID, connectionHandle string) error {
	s := model.Session{
		SessionID:        sessionID,
		AuctionID:        auctionID,
		ParticipantID:    participantID,
		ConnectionHandle: connectionHandle,
		Connected:        true,
		LastActiveAt:     m.now(),
	}
	if err := m.repo.SaveSession(s); err != nil {
		return fmt.Errorf("monitor: failed to track session %s: %w", sessionID, err)
	}
	return nil
}

// Touch refreshes a participant's liveness on any authenticated action. A
// touch on a disconnected session flags it for reconnect approval rather
// than silently reviving it.
func (m *Monitor) Touch(participantID string) error {
	s, err := m.repo.SessionByParticipant(participantID)
	if err != nil {
		return fmt.Errorf("monitor: %w", err)
	}

	s.LastActiveAt = m.now()
	if !s.Connected {
		s.PendingReconnectApproval = true
	}
	if err := m.repo.SaveSession(s); err != nil {
		return fmt.Errorf("monitor: failed to save session %s: %w", s.SessionID, err)
	}
	return nil
}

// CleanupIdleConnections marks every idle connected session disconnected and
// clears its handle. Re-running on an already-clean set changes nothing and
// reports zero cleaned, so it is safe on any timer.
func (m *Monitor) CleanupIdleConnections() (CleanupResult, error) {
	sessions, err := m.repo.AllSessions()
	if err != nil {
		return CleanupResult{}, fmt.Errorf("monitor: failed to list sessions: %w", err)
	}

	now := m.now()
	var res CleanupResult
	for _, s := range sessions {
		idleFor := now.Sub(s.LastActiveAt)
		if idleFor > m.zombieTimeout {
			res.ZombiesFound++
		}
		if !s.Connected || idleFor <= m.idleTimeout {
			continue
		}

		s.Connected = false
		s.ConnectionHandle = ""
		if err := m.repo.SaveSession(s); err != nil {
			return res, fmt.Errorf("monitor: failed to disconnect session %s: %w", s.SessionID, err)
		}
		res.Cleaned++

		utils.Info("disconnected idle session", map[string]any{
			"session_id":     s.SessionID,
			"participant_id": s.ParticipantID,
			"idle_for":       idleFor.String(),
			"zombie":         idleFor > m.zombieTimeout,
		})
	}
	return res, nil
}

// Stats computes the current liveness breakdown.
func (m *Monitor) Stats() (Stats, error) {
	sessions, err := m.repo.AllSessions()
	if err != nil {
		return Stats{}, fmt.Errorf("monitor: failed to list sessions: %w", err)
	}

	now := m.now()
	stats := Stats{PerAuction: make(map[string]AuctionSessionStats)}
	for _, s := range sessions {
		stats.Total++
		per := stats.PerAuction[s.AuctionID]
		per.Total++

		idleFor := now.Sub(s.LastActiveAt)
		if s.Connected {
			stats.Connected++
			per.Connected++
			if idleFor > m.idleTimeout {
				stats.Idle++
			}
		}
		if idleFor > m.zombieTimeout {
			stats.Zombie++
		}
		stats.PerAuction[s.AuctionID] = per
	}

	stats.CanReleaseResource = stats.Connected == 0
	return stats, nil
}

// Run executes a cleanup pass every interval until ctx is cancelled. Failed
// passes are logged and retried on the next tick; cleanup is advisory and
// must never block bid traffic.
func (m *Monitor) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			res, err := m.CleanupIdleConnections()
			if err != nil {
				utils.Error("session cleanup failed, will retry next tick", map[string]any{"error": err.Error()})
				continue
			}
			if res.Cleaned > 0 || res.ZombiesFound > 0 {
				utils.Info("session cleanup pass", map[string]any{
					"cleaned":       res.Cleaned,
					"zombies_found": res.ZombiesFound,
				})
			}
		}
	}
}
