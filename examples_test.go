package jpnorm_test

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/transform"

	"github.com/scalecode-solutions/jpnorm"
)

func ExampleClassifyScript() {
	fmt.Println(jpnorm.ClassifyScript("京都"))
	fmt.Println(jpnorm.ClassifyScript("モズクﾓｽﾞｸ"))
	fmt.Println(jpnorm.ClassifyScript("!グーグル"))
	// Output: KANJI
	// KATAKANA
	// UNKNOWN_SCRIPT
}

func ExampleClassifyCharacterSet() {
	fmt.Println(jpnorm.ClassifyCharacterSet("ｶﾀｶﾅ"))
	fmt.Println(jpnorm.ClassifyCharacterSet("ｶﾀｶﾅカタカナ"))
	fmt.Println(jpnorm.ClassifyCharacterSet("①"))
	// Output: JISX0201
	// JISX0208
	// JISX0213
}

func ExampleToFullWidth() {
	fmt.Println(jpnorm.ToFullWidth("abc[]?. ｶﾞｷﾞ"))
	// Output: ａｂｃ［］？．　ガギ
}

func ExampleToHalfWidth() {
	fmt.Println(jpnorm.ToHalfWidth("パソコン　ＰＣ"))
	// Output: ﾊﾟｿｺﾝ PC
}

func ExampleNormalizeVoicedSoundMark() {
	fmt.Println(jpnorm.NormalizeVoicedSoundMark("う゛ぁいおりん"))
	// Output: ゔぁいおりん
}

func ExampleKanjiToArabic() {
	kanji, arabic, err := jpnorm.KanjiToArabic("2千四十３", false)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(kanji, arabic)

	_, _, err = jpnorm.KanjiToArabic("てすと", false)
	fmt.Println(errors.Is(err, jpnorm.ErrInvalidToken))
	// Output: 二千四十三 2043
	// true
}

func ExampleToKanji() {
	fmt.Println(jpnorm.ToKanji(53420530532))
	// Output: 五百三十四億二千五十三万五百三十二
}

func ExampleTransformer() {
	t := transform.Chain(jpnorm.Widen, jpnorm.ToHiragana)
	r := transform.NewReader(strings.NewReader("ｶﾀｶﾅ 123\n"), t)
	if _, err := io.Copy(os.Stdout, r); err != nil {
		fmt.Println(err)
	}
	// Output: かたかな　１２３
}
