// Command scanogram loads 3D scan project files, reports on the scans
// they describe and explains why invalid files are rejected.
package main

import "github.com/golang/glog"

func main() {
	defer glog.Flush()
	Execute()
}
