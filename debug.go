package bt

import "os"

// debugBT controls verbose tick debugging output via log/slog.
// Set BT_DEBUG=1 to enable.
var debugBT = os.Getenv("BT_DEBUG") == "1"
