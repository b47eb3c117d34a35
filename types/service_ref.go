package types

import (
	"fmt"
	"strings"
)

// ValidateServiceReference checks that ref is a well-formed opaque address of an
// external service. Existence or liveness of the service is not checked.
func ValidateServiceReference(ref string) error {
	if len(ref) == 0 {
		return ErrEmptyServiceReference
	}
	if strings.TrimSpace(ref) != ref {
		return ErrPaddedServiceReference
	}
	return nil
}

// ValidateServiceReferences validates every entry of refs and rejects
// repeated entries.
func ValidateServiceReferences(refs []string) error {
	seen := make(map[string]struct{}, len(refs))
	for i, ref := range refs {
		if err := ValidateServiceReference(ref); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		if _, ok := seen[ref]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateServiceReference, ref)
		}
		seen[ref] = struct{}{}
	}
	return nil
}
