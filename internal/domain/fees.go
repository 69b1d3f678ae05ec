package domain

import "fmt"

// FeePolicy is the static fee table plus the payment recipient
type FeePolicy struct {
	Thread    string
	Reply     string
	Profile   string
	Recipient string
}

// DefaultFeePolicy returns the testnet fee table
func DefaultFeePolicy() FeePolicy {
	return FeePolicy{
		Thread:    DEFAULT_THREAD_FEE,
		Reply:     DEFAULT_REPLY_FEE,
		Profile:   DEFAULT_PROFILE_FEE,
		Recipient: DEFAULT_PAYMENT_WALLET,
	}
}

// Fee returns the decimal fee for an action
func (f FeePolicy) Fee(action ActionKind) (string, error) {
	switch action {
	case ActionThread:
		return f.Thread, nil
	case ActionReply:
		return f.Reply, nil
	case ActionProfile:
		return f.Profile, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}
}

// RequirementFor returns the payment requirement for an action. No I/O.
func (f FeePolicy) RequirementFor(action ActionKind) (Requirement, error) {
	amount, err := f.Fee(action)
	if err != nil {
		return Requirement{}, err
	}
	return Requirement{
		Action:    action,
		Amount:    amount,
		Recipient: f.Recipient,
		Symbol:    NATIVE_TOKEN_SYMBOL,
	}, nil
}

// PurposeForAmount reverse-matches an amount string against the fee table.
// The match is on the exact string, so "0.00030" is not "0.0003".
func (f FeePolicy) PurposeForAmount(amount string) Purpose {
	switch amount {
	case f.Thread:
		return PurposeThread
	case f.Reply:
		return PurposeReply
	case f.Profile:
		return PurposeProfile
	default:
		return PurposeUnknown
	}
}

// Validate checks that every fee parses and the recipient is set
func (f FeePolicy) Validate() error {
	for _, action := range []ActionKind{ActionThread, ActionReply, ActionProfile} {
		fee, _ := f.Fee(action)
		if _, err := ParseAmount(fee); err != nil {
			return fmt.Errorf("invalid %s fee: %w", action, err)
		}
	}
	if !IsHexAddress(f.Recipient) {
		return fmt.Errorf("%w: payment recipient %q", ErrInvalidInput, f.Recipient)
	}
	return nil
}
