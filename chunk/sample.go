package chunk

// Sample is one timestamped measurement. Ts carries whatever integer unit
// the producer uses (the codec never interprets it beyond differencing);
// Val round-trips by bit pattern, so NaN payloads and signed zeros survive.
type Sample struct {
	Ts  int64
	Val float64
}
