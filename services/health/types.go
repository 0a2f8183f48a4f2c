package health

type Service interface {
	IsHealthy() bool
}

type Impl struct {
	isConnected func() bool
}
