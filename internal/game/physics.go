package game

// advanceObstacles runs one physics frame over the live obstacle set.
// Each obstacle moves left by its own speed, then is either culled as
// escaped (right edge past the left viewport edge, no power effect),
// consumed by a collision with the ship (power penalty), or kept.
// Obstacles do not interact with each other, so iteration order does
// not affect the outcome. A removed obstacle never re-enters the set.
func (g *Game) advanceObstacles() {
	shipBox := g.ship.Bounds()

	alive := g.obstacles[:0]
	for _, o := range g.obstacles {
		o.X -= o.Speed

		if o.X+o.W < 0 {
			continue // escaped
		}

		if shipBox.Intersects(o.Bounds()) {
			g.drainPower(g.cfg.Power.CollisionPenalty)
			continue // consumed
		}

		alive = append(alive, o)
	}
	g.obstacles = alive
}

// drainPower applies a power decrement and performs the game-over
// check at the moment of the decrement, so both the collision penalty
// and the continuous decay can end the session. The transition is
// one-way: the flag is never cleared within a session.
func (g *Game) drainPower(amount float64) {
	g.ship.Power -= amount
	if g.ship.Power <= 0 {
		g.ship.Power = 0
		g.gameOver = true
	}
}
