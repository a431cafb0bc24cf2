package session

import "time"

// nowFunc is a test seam for time.Now.
var nowFunc = time.Now
