package telegramify_test

import (
	"fmt"

	telegramify "github.com/riverfjs/telegramify-html"
)

func ExampleConvert() {
	fmt.Println(telegramify.Convert("Hello **world**! See `make_build` or ping @ops_team."))
	// Output: Hello <b>world</b>! See <code>make_build</code> or ping @ops_team.
}

func ExampleSplitMessage() {
	for _, chunk := range telegramify.SplitMessage("first line\nsecond line\nthird", 22) {
		fmt.Printf("%q\n", chunk)
	}
	// Output:
	// "first line\nsecond line"
	// "third"
}

func ExamplePlainText() {
	fmt.Println(telegramify.PlainText("| Tool | Use |\n|---|---|\n| go | build |"))
	// Output: • Tool: go | Use: build
}
