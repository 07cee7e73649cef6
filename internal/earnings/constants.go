package earnings

// Log Messages
const (
	LogMsgCounterDrift       = "Purchase counters drifted from ledger, corrected"
	LogMsgCountersConsistent = "Purchase counters consistent with ledger"
)
