package interfaces

//go:generate mockgen -destination=mocks/mock_interfaces.go -package=mock_interfaces hours_tracker/internal/usecase/interfaces IWorkSessionRepository,IPayoutEventRepository
