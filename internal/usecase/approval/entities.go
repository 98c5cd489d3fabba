package approval

type DecisionInput struct {
	PassID   string
	ActorID  string
	Decision string // "approve" | "reject"
}
