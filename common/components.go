package common

const (
	// DISPATCHER name to identify the block event dispatcher component
	DISPATCHER = "dispatcher"
	// SUBMITTER name to identify the signal submission engine
	SUBMITTER = "submitter"
	// CLAIMRECONCILER name to identify the claim reconciler component
	CLAIMRECONCILER = "claimreconciler"
	// BLOCKNOTIFIER name to identify the new block notifier
	BLOCKNOTIFIER = "blocknotifier"
	// STATUS name to identify the status services (REST + RPC)
	STATUS = "status"
)
