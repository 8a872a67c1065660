package main

import "github.com/bizlead/bizlead-go/pkg/serverless"

func main() {
	serverless.LambdaMain()
}
