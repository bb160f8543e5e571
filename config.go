package tas

// defaultMaxQueueSize is the per-priority queue capacity used when no
// Option overrides it: 800 frames total, split evenly across the eight
// priorities.
const defaultMaxQueueSize = 100

// defaultDataRateBps is the link rate used for guard-band transmission-time
// lookahead when no Option overrides it: 1.5 Mbit/s.
const defaultDataRateBps int64 = 1_500_000

// coreOptions holds configuration gathered from Option values before a
// Core is constructed.
type coreOptions struct {
	trustQostag bool
	guardBand   bool
	maxSize     [TotalQosTags]int
	dataRateBps int64
	clock       Clock
	kernel      Kernel
	logger      *Logger
	classifier  Classifier
	queues      [TotalQosTags]Queue
}

// Option configures a Core at construction time.
type Option interface {
	apply(*coreOptions) error
}

// optionFunc adapts a function to an Option.
type optionFunc struct {
	fn func(*coreOptions) error
}

func (o *optionFunc) apply(opts *coreOptions) error { return o.fn(opts) }

func newOption(fn func(*coreOptions) error) Option {
	return &optionFunc{fn: fn}
}

// WithTrustQostag controls whether Core.Enqueue trusts an item's own
// priority tag ahead of running the classifier chain. Default false.
func WithTrustQostag(trust bool) Option {
	return newOption(func(o *coreOptions) error {
		o.trustQostag = trust
		return nil
	})
}

// WithGuardBand controls whether the dequeue selector accounts for the
// head-of-line frame's transmission time when deciding if a queue's gate is
// open far enough in advance to safely dispatch. Default true.
func WithGuardBand(enabled bool) Option {
	return newOption(func(o *coreOptions) error {
		o.guardBand = enabled
		return nil
	})
}

// WithMaxQueueSize sets the backing FIFO capacity for every priority that
// uses the default Queue implementation (NewFIFO). It has no effect on
// priorities configured via WithQueue. Default 100 per priority.
func WithMaxQueueSize(size int) Option {
	return newOption(func(o *coreOptions) error {
		for q := range o.maxSize {
			o.maxSize[q] = size
		}
		return nil
	})
}

// WithQueue installs a custom Queue implementation for one priority,
// overriding the default NewFIFO-backed store for that priority only.
func WithQueue(priority int, queue Queue) Option {
	return newOption(func(o *coreOptions) error {
		if priority < 0 || priority >= TotalQosTags {
			return ErrInvalidPriority
		}
		o.queues[priority] = queue
		return nil
	})
}

// WithDataRate sets the link rate, in bits per second, used for guard-band
// transmission-time lookahead. Default 1.5 Mbit/s.
func WithDataRate(bps int64) Option {
	return newOption(func(o *coreOptions) error {
		o.dataRateBps = bps
		return nil
	})
}

// WithClock injects a time source used in place of Kernel.Now. Most callers
// should leave this unset and rely on Kernel.Now.
func WithClock(clock Clock) Option {
	return newOption(func(o *coreOptions) error {
		o.clock = clock
		return nil
	})
}

// WithKernel installs the discrete-event simulator collaborator Core posts
// wake-up callbacks through. This is the only required Option; New returns
// an error if it is never supplied.
func WithKernel(kernel Kernel) Option {
	return newOption(func(o *coreOptions) error {
		o.kernel = kernel
		return nil
	})
}

// WithLogger installs a structured event logger. When unset, Core falls
// back to a stderr JSON logger at the informational level.
func WithLogger(logger *Logger) Option {
	return newOption(func(o *coreOptions) error {
		o.logger = logger
		return nil
	})
}

// WithClassifier installs the packet classifier chain consulted by
// Core.Enqueue. When unset, classification falls back entirely to the
// item's own priority tag, or queue 0.
func WithClassifier(classifier Classifier) Option {
	return newOption(func(o *coreOptions) error {
		o.classifier = classifier
		return nil
	})
}

// resolveOptions applies opts over the documented defaults, skipping nil
// entries so callers can conditionally include an Option without branching.
func resolveOptions(opts []Option) (*coreOptions, error) {
	cfg := &coreOptions{
		guardBand:   true,
		dataRateBps: defaultDataRateBps,
	}
	for q := range cfg.maxSize {
		cfg.maxSize[q] = defaultMaxQueueSize
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(cfg); err != nil {
			return nil, err
		}
	}
	if cfg.logger == nil {
		cfg.logger = defaultLogger()
	}
	for q := range cfg.queues {
		if cfg.queues[q] == nil {
			cfg.queues[q] = NewFIFO(cfg.maxSize[q])
		}
	}
	return cfg, nil
}
