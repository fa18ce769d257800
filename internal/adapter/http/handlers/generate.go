package handlers

//go:generate mockgen -destination=mocks/mock_usecases.go -package=mocks hours_tracker/internal/usecase IWorkSessionUseCase,IPayoutEventUseCase,IPipelineUseCase
