package v1

import (
	"github.com/littleroamers/roamers/internal/usecase"
	"github.com/littleroamers/roamers/pkg/logger"
)

type V1 struct {
	uploads    usecase.UploadUseCase
	activities usecase.ActivityUseCase
	walks      usecase.WalkUseCase
	stats      usecase.StatsUseCase

	logger logger.Interface
}
