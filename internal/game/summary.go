package game

import "fmt"

// endGame sets the terminal state and composes the outcome message.
// Burnout and the stress cap override grading; only finite runs that
// end cleanly by day limit are graded.
func (g *Game) endGame() {
	g.gameOver = true
	done := len(g.completedTasks)

	if g.stress >= maxStress {
		g.message = fmt.Sprintf("BURNOUT! Stress limit reached at %d.", g.stress)
		if g.mode == ModeLife {
			g.message += fmt.Sprintf(" You survived for %d days and completed %d tasks.", g.day-1, done)
		} else {
			g.message += fmt.Sprintf(" You completed %d tasks.", done)
		}
		return
	}

	if g.mode == ModeLife {
		// Life mode only ever ends via the stress cap.
		g.message = "Error: life mode ended without burnout."
		return
	}

	if g.burntOut {
		g.message = fmt.Sprintf("BURNOUT. You finished the %s in a state of burnout. You completed %d tasks.", g.mode, done)
		return
	}

	rate := float64(done) / float64(g.dayLimit*tasksPerDay)
	switch {
	case rate >= 0.8:
		g.grade = "A+"
		g.message = fmt.Sprintf("Fantastic! (A+) - You didn't just survive, you thrived! You completed %d tasks.", done)
	case rate >= 0.6:
		g.grade = "B"
		g.message = fmt.Sprintf("Great Job! (B) - You managed your Fs well and got a lot done. You completed %d tasks.", done)
	case rate >= 0.4:
		g.grade = "C"
		g.message = fmt.Sprintf("You Survived. (C) - It was a struggle, but you made it through. You completed %d tasks.", done)
	default:
		g.grade = "D"
		g.message = fmt.Sprintf("Overwhelmed. (D) - The %s was tough, but you'll get 'em next time. You completed %d tasks.", g.mode, done)
	}
}
