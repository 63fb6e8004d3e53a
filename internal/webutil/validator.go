package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Validator はアプリケーション全体で共有するバリデータ
var Validator *validator.Validate

// Trans はエラーメッセージの翻訳に使う
var Trans ut.Translator

func init() {
	Validator = validator.New(validator.WithRequiredStructEnabled())

	// メッセージのフィールド名は json タグ名
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	english := en.New()
	uni := ut.New(english, english)
	var found bool
	Trans, found = uni.GetTranslator("en")
	if !found {
		log.Fatal("translator not found")
	}
	if err := en_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	registerTranslation := func(tag, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, fe.Field(), fe.Param())
			return t
		})
	}

	// デフォルトの翻訳が無いタグ、または分かりにくいもの
	registerTranslation("uuid", "{0} must be a valid UUID")
	registerTranslation("datetime", "{0} must be a date in the format YYYY-MM-DD")
	registerTranslation("oneof", "{0} must be one of: {1}")
}
