package game

import "time"

// announcement is a message with an expiry on the game clock. A zero
// expiresAt keeps it until it is replaced.
type announcement struct {
	text      string
	expiresAt float64
}

// Announce replaces the current message. A ttl of zero keeps it on screen
// until the next announcement or reset.
func (g *Game) Announce(text string, ttl time.Duration) {
	g.announcement = announcement{text: text}
	if ttl > 0 {
		g.announcement.expiresAt = g.clock + ttl.Seconds()
	}
}

// Announcement returns the visible message, or "" when there is none.
func (g *Game) Announcement() string {
	return g.announcement.text
}

func (g *Game) expireAnnouncement() {
	a := g.announcement
	if a.text != "" && a.expiresAt > 0 && g.clock >= a.expiresAt {
		g.announcement = announcement{}
	}
}
