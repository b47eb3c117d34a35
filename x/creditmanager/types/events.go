package types

import (
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	EventTypeUpdateConfig        = "update_config"
	EventTypeUpdateAllowLists    = "update_allow_lists"
	EventTypeAcceptRegistryOwner = "accept_account_registry_ownership"
	EventTypeCreateCreditAccount = "create_credit_account"

	AttributeKeySender        = "sender"
	AttributeKeyUpdatedFields = "updated_fields"
	AttributeKeyRegistry      = "registry"
	AttributeKeyTokenID       = "token_id"
)

func NewUpdateConfigEvent(sender string, updates ConfigUpdates) sdk.Event {
	return sdk.NewEvent(
		EventTypeUpdateConfig,
		sdk.NewAttribute(AttributeKeySender, sender),
		sdk.NewAttribute(AttributeKeyUpdatedFields, strings.Join(updates.UpdatedFields(), ",")),
	)
}
