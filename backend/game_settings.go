package main

type GameSettings struct {
	// TopColor occupies rows 0 and 1 at setup and advances toward
	// increasing rows. The other color moves first.
	TopColor Color `json:"top_color"`
}

func DefaultGameSettings() GameSettings {
	return GameSettings{
		TopColor: Dark,
	}
}
