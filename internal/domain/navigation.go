package domain

import "time"

const (
	AccessoryRedirectDelay = 4 * time.Second
	DonationRedirectDelay  = 3 * time.Second
)

// Navigation is a route change that happens after Delay unless the user
// cancels it or navigates first.
type Navigation struct {
	Path  string
	Delay time.Duration
}

func HomeNavigation() Navigation {
	return Navigation{Path: "/"}
}
