package chainmap

type Stats struct {
	Size       int
	Buckets    int
	MaxChain   int
	LoadFactor float32
}
