package enums

// ExpenditureType distinguishes goods purchases from service payments.
type ExpenditureType string

const (
	ExpenditureTypeGoods    ExpenditureType = "goods"
	ExpenditureTypeServices ExpenditureType = "services"
)

func (e ExpenditureType) String() string {
	return string(e)
}

func (e ExpenditureType) IsValid() bool {
	return e == ExpenditureTypeGoods || e == ExpenditureTypeServices
}
