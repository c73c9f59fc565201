// File: utils/constants.go
package utils

import "time"

// WizardSessionPrefix is the prefix used for Redis booking wizard session keys.
const WizardSessionPrefix = "wizard:"

// WizardSessionTTL is the time-to-live for an idle booking wizard session.
const WizardSessionTTL = 30 * time.Minute

// TourCachePrefix is the prefix used for Redis tour catalog cache keys.
const TourCachePrefix = "tours:"

// TourCacheTTL is the time-to-live for cached tour catalog reads.
const TourCacheTTL = 5 * time.Minute
