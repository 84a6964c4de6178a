package openinghours

import "github.com/m04kA/SMC-PitchBooking/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
