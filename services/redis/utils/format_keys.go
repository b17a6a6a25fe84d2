package utils

/**
 * Utility functions to format Redis keys. Avoids repeating the same
 * fmt.Sprintf format spec everywhere and drifting the key layout.
 */

import "fmt"

func FormatLobbyKey(lobbyID string) string {
	return fmt.Sprintf("lobby:%s", lobbyID)
}
