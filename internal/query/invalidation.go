package query

// Mutation names a class of write operation. Create, update, and
// delete of one resource share an invalidation set, so the table is
// keyed by resource class rather than verb.
type Mutation string

// Mutation classes.
const (
	MutateTransaction Mutation = "transaction"
	MutateAccount     Mutation = "account"
	MutateBudget      Mutation = "budget"
	MutateGoal        Mutation = "goal"
	MutateBill        Mutation = "bill"
	MutateCategory    Mutation = "category"
	MutateTrainModel  Mutation = "train-model"
)

// invalidationTable is the full mutation-to-staleness contract, kept as
// one static table so it can be tested independently of any network
// effect. Transactions are the notable row: creating one moves an
// account balance and consumes budget, so all three caches go stale.
var invalidationTable = map[Mutation][]Resource{
	MutateTransaction: {Transactions, Accounts, Budgets},
	MutateAccount:     {Accounts},
	MutateBudget:      {Budgets},
	MutateGoal:        {Goals},
	MutateBill:        {Bills},
	MutateCategory:    {Categories},
	MutateTrainModel:  mlResources,
}

// Invalidates returns the resources a mutation class marks stale.
func Invalidates(m Mutation) []Resource {
	return invalidationTable[m]
}
