package cmd

import (
	"fmt"
	"time"
)

// addLogicalPort carves an ethernet logical port with the given MAC out of an
// SR-IOV adapter and assigns it to the partition. The HMC applies the change
// dynamically; the partition sees a new network device shortly after.
func addLogicalPort(r hmcRunner, system, lpar, adapterID, physPort, mac string, timeout time.Duration) error {
	attrs := fmt.Sprintf("adapter_id=%s,phys_port_id=%s,logical_port_type=eth,mac_addr=%s",
		adapterID, physPort, mac)
	cmd := fmt.Sprintf("chhwres -r sriov -m %s --rsubtype logport -o a -p %s -a %s",
		shellQuote(system), shellQuote(lpar), shellQuote(attrs))
	_, err := r.run(cmd, timeout)
	return err
}

// removeLogicalPort releases a logical port from the partition by its
// logical_port_id, as resolved from the MAC via lookupLogicalPortID.
func removeLogicalPort(r hmcRunner, system, lpar, adapterID, logicalPortID string, timeout time.Duration) error {
	attrs := fmt.Sprintf("adapter_id=%s,logical_port_id=%s", adapterID, logicalPortID)
	cmd := fmt.Sprintf("chhwres -r sriov -m %s --rsubtype logport -o r -p %s -a %s",
		shellQuote(system), shellQuote(lpar), shellQuote(attrs))
	_, err := r.run(cmd, timeout)
	return err
}
