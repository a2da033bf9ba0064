package input

type UsageUseCase interface {
	// Usage reports today's consumed character count against the daily quota.
	Usage() (date string, used, quota int)
}
