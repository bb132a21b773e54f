package cmd

// missingPackages returns the subset of pkgs not installed on the partition.
// RSCT and DynamicRM must be present before the HMC can drive dynamic SR-IOV
// changes into the partition, so a non-empty result cancels the run.
func missingPackages(pkgs []string) []string {
	var missing []string
	for _, p := range pkgs {
		if _, code, err := localRunFunc("rpm", "-q", p); err != nil || code != 0 {
			missing = append(missing, p)
		}
	}
	return missing
}
