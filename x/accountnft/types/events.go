package types

const (
	EventTypeInstantiate     = "instantiate_registry"
	EventTypeProposeNewOwner = "propose_new_owner"
	EventTypeClearProposal   = "clear_ownership_proposal"
	EventTypeAcceptOwnership = "accept_ownership"
	EventTypeMint            = "mint"

	AttributeKeyRegistry      = "registry"
	AttributeKeySender        = "sender"
	AttributeKeyNewOwner      = "new_owner"
	AttributeKeyPreviousOwner = "previous_owner"
	AttributeKeyTokenID       = "token_id"
	AttributeKeyUser          = "user"
)
