package logchute

// NullChute discards everything. Useful when the engine must stay silent.
type NullChute struct{}

func (NullChute) Init(RuntimeServices) error  { return nil }
func (NullChute) Log(Level, string)           {}
func (NullChute) LogErr(Level, string, error) {}
func (NullChute) Enabled(Level) bool          { return false }
func (NullChute) Shutdown()                   {}
