package inventory

// Log messages
const (
	LogMsgItemRegistered    = "Item registered"
	LogMsgItemRejected      = "Item rejected"
	LogMsgAdvanceStarting   = "Advancing inventory"
	LogMsgAdvanceCompleted  = "Inventory advanced"
	LogMsgRevalidateFailed  = "Item no longer satisfies its category bounds"
	LogMsgRevalidateSuccess = "All items satisfy their category bounds"
)

// ErrMsgAlreadyTracked is reported when the same item is registered twice
const ErrMsgAlreadyTracked = "already tracked"

// SingleDay is the step used by UpdateQuality
const SingleDay = 1
