package animal

type AdoptionStatus string

const (
	StatusAvailable       AdoptionStatus = "available"
	StatusPending         AdoptionStatus = "pending"
	StatusPendingTransfer AdoptionStatus = "pending_transfer"
	StatusAdopted         AdoptionStatus = "adopted"
)

func (s AdoptionStatus) String() string {
	return string(s)
}

func (s AdoptionStatus) IsValid() bool {
	switch s {
	case StatusAvailable, StatusPending, StatusPendingTransfer, StatusAdopted:
		return true
	default:
		return false
	}
}

func NewAdoptionStatus(s string) (AdoptionStatus, error) {
	status := AdoptionStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
