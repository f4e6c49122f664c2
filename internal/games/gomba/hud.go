package gomba

import (
	"fmt"

	"github.com/vovakirdan/gomba/internal/core"
)

// Popup is a transient kill-score label in world space.
type Popup struct {
	Pos       core.Vec2
	Amount    int
	Remaining float64
}

// HUD is the in-game UI: score display, score popups and the start and
// game-over panels.
type HUD struct {
	popupDuration float64

	score    int
	panel    bool
	gameOver bool
	popups   []Popup
}

// NewHUD creates a HUD showing the title panel.
func NewHUD(popupDuration float64) *HUD {
	return &HUD{popupDuration: popupDuration, panel: true}
}

// UpdateScore sets the displayed score.
func (h *HUD) UpdateScore(score int) {
	h.score = score
}

// StartGameUI zeroes the score and hides the panels.
func (h *HUD) StartGameUI() {
	h.UpdateScore(0)
	h.panel = false
	h.gameOver = false
	h.popups = nil
}

// EndGameUI shows the game-over panel.
func (h *HUD) EndGameUI() {
	h.panel = true
	h.gameOver = true
}

// SpawnScorePopup shows amount at pos for the popup duration.
func (h *HUD) SpawnScorePopup(pos core.Vec2, amount int) {
	h.popups = append(h.popups, Popup{Pos: pos, Amount: amount, Remaining: h.popupDuration})
}

// Tick ages popups and drops expired ones.
func (h *HUD) Tick(dt float64) {
	kept := h.popups[:0]
	for _, p := range h.popups {
		p.Remaining -= dt
		if !expired(p.Remaining) {
			kept = append(kept, p)
		}
	}
	h.popups = kept
}

// ScoreText is the score padded to seven digits.
func (h *HUD) ScoreText() string {
	return fmt.Sprintf("%07d", h.score)
}

func (h *HUD) Score() int         { return h.score }
func (h *HUD) PanelVisible() bool { return h.panel }
func (h *HUD) GameOver() bool     { return h.gameOver }
func (h *HUD) Popups() []Popup    { return h.popups }
