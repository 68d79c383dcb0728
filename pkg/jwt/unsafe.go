package jwt

// DecodeUnsafe returns the payload claims of token without checking the
// signature, the algorithm or the expiry. It returns nil for any input that
// does not decode.
//
// The result is not authenticated. It exists for previews, such as showing
// the address an unsubscribe link targets before the user confirms, and must
// never gate a state-changing operation.
func DecodeUnsafe(token string) (claims Claims) {
	defer func() {
		if recover() != nil {
			claims = nil
		}
	}()

	_, payloadSeg, _, err := Split(token)
	if err != nil {
		return nil
	}
	payloadJSON, err := DecodeSegment(payloadSeg)
	if err != nil {
		return nil
	}
	raw, err := ParseJSON(payloadJSON)
	if err != nil {
		return nil
	}
	return Claims(raw)
}
