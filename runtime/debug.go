package runtime

import "fmt"

func (rt *Runtime) String() string {
	return fmt.Sprintf("Runtime{pending=%d, scheduled=%d}\n%s", rt.index.Len(), len(rt.work), rt.index)
}
