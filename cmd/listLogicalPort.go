package cmd

import (
	"fmt"
	"strings"
	"time"
)

// logicalPortListed reports whether a logical port with the given MAC shows
// up in the HMC's eth-level listing for the partition. Used as the
// post-condition check after both add and remove operations.
func logicalPortListed(r hmcRunner, system, lpar, mac string, timeout time.Duration) (bool, error) {
	cmd := fmt.Sprintf("lshwres -r sriov --rsubtype logport -m %s --level eth --filter %s",
		shellQuote(system), shellQuote("lpar_names="+lpar))
	out, err := r.run(cmd, timeout)
	if err != nil {
		return false, err
	}
	return strings.Contains(out, mac), nil
}
