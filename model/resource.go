package model

// Resource is a protected entity bound to a set of policy ids. The set is
// OR-ed: access is granted if the subject satisfies at least one bound
// policy. An empty set denies everyone.
type Resource struct {
	ID        string   `json:"resource_id" binding:"required"`
	PolicyIDs []string `json:"policy_ids"`
}

// PolicyIDs is the request body for a wholesale replacement of a resource's
// bound policy set.
type PolicyIDs struct {
	PolicyIDs []string `json:"policy_ids"`
}
