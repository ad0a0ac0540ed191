package civiltime

import "github.com/gocivil/civiltime/tzservice"

// SetupClock and TearDownClock let tests pin MakeNow/MakeToday to a fixed
// instant instead of the real wall clock.
func SetupClock(c WallClock) { defaultClock = c }
func TearDownClock()         { defaultClock = systemWallClock{} }

// SetupProvider and TearDownProvider let tests substitute a fake zone
// service for the real tzdata-backed one, so DST gap/overlap behavior can
// be exercised without depending on the host's installed zoneinfo.
func SetupProvider(p tzservice.Provider) { defaultProvider = p }
func TearDownProvider()                  { defaultProvider = tzservice.System() }

// MakeNowWithClock exposes the clock-parameterized constructor directly,
// for tests that want to pass a throwaway WallClock without touching
// package state.
func MakeNowWithClock(c WallClock) Instant { return makeNowWithClock(c) }
