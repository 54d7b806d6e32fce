// Command pprank ranks synthetic graphs with Personalized PageRank.
//
//	pprank run --graph random --nodes 5000 --p 0.002 --restart 0,1 --top 5
//	pprank demo
package main

func main() {
	Execute()
}
