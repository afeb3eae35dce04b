package selection

// Package selection holds the numbers a user picks by hand before a draw and
// owns every rule about them: the pick limit, duplicates, the valid range, and
// the lock that follows a completed draw.
