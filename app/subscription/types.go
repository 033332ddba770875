package subscription

// Channel is one configured feed subscription. Channels are built once from
// the subscription list and never mutated afterwards.
type Channel struct {
	URL    string
	Author string
	Group  string // empty means ungrouped
}
