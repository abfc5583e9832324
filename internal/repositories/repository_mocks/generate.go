package repository_mocks

//go:generate mockgen -source=../interfaces.go -destination=repository_mocks.go -package=repository_mocks

// Regenerate the record and budget store mocks with:
//   go generate ./internal/repositories/repository_mocks
