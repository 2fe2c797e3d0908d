package game

// validateActorLocked checks that the session is running and the user holds
// the turn. Callers must hold s.mu.
func validateActorLocked(s *Session, userID uint) error {
	if s.Status != StatusActive {
		return ErrSessionNotActive
	}
	if s.TurnIndex >= len(s.Players) || s.Players[s.TurnIndex].UserID != userID {
		return ErrNotYourTurn
	}
	return nil
}

// advanceTurnLocked moves the turn pointer to the next connected player in
// round-robin order. Returns false when no connected player remains.
// Callers must hold s.mu.
func advanceTurnLocked(s *Session) bool {
	n := len(s.Players)
	if n == 0 {
		return false
	}
	for i := 1; i <= n; i++ {
		idx := (s.TurnIndex + i) % n
		if s.Players[idx].Connected {
			s.TurnIndex = idx
			return true
		}
	}
	return false
}
