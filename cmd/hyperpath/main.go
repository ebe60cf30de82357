// Command hyperpath transforms high-dimensional points into bounded 3D paths.
//
//	hyperpath transform --config hyperpath.yaml --input points.csv
//	hyperpath shells --max-dim 10
//	hyperpath demo
package main

func main() {
	Execute()
}
