package importer

import (
	"encoding/json"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// exampleRecord fixes the key order of example documents
type exampleRecord struct {
	Type             string   `json:"type" yaml:"type"`
	Sentence         string   `json:"sentence,omitempty" yaml:"sentence,omitempty"`
	Translation      string   `json:"translation" yaml:"translation"`
	Words            []string `json:"words,omitempty" yaml:"words,omitempty,flow"`
	WordTranslations []string `json:"wordTranslations,omitempty" yaml:"wordTranslations,omitempty,flow"`
	Word             string   `json:"word,omitempty" yaml:"word,omitempty"`
	Phonetic         string   `json:"phonetic,omitempty" yaml:"phonetic,omitempty"`
	Meaning          string   `json:"meaning,omitempty" yaml:"meaning,omitempty"`
	Distractors      []string `json:"distractors,omitempty" yaml:"distractors,omitempty,flow"`
	Blanks           []string `json:"blanks,omitempty" yaml:"blanks,omitempty,flow"`
	Question         string   `json:"question,omitempty" yaml:"question,omitempty"`
	Answer           string   `json:"answer,omitempty" yaml:"answer,omitempty"`
	ShowQuestion     *bool    `json:"showQuestion,omitempty" yaml:"showQuestion,omitempty"`
	FolderName       string   `json:"folderName,omitempty" yaml:"folderName,omitempty"`
}

func show(b bool) *bool { return &b }

var examples = map[string][]exampleRecord{
	"sentence": {
		{Type: "sentence-building", Sentence: "I love my family", Translation: "我爱我的家人", FolderName: "基础句型/家庭相关"},
		{Type: "sentence-building", Sentence: "What is your favorite color", Translation: "你最喜欢的颜色是什么", FolderName: "基础句型/日常问答"},
		{Type: "sentence-building", Sentence: "I like to play basketball", Translation: "我喜欢打篮球", FolderName: "兴趣爱好/运动类"},
		{Type: "sentence-building", Sentence: "How old are you", Translation: "你多大了", FolderName: "日常问候"},
		{Type: "sentence-building", Sentence: "Nice to meet you", Translation: "很高兴见到你", FolderName: "日常问候"},
	},
	"matching": {
		{
			Type: "matching", Sentence: "动物单词", Translation: "学习常见动物的英文单词",
			Words:            []string{"dog", "cat", "bird", "fish", "rabbit"},
			WordTranslations: []string{"狗", "猫", "鸟", "鱼", "兔子"},
			FolderName:       "词汇练习/动物类",
		},
		{
			Type: "matching", Sentence: "颜色单词", Translation: "学习常见颜色的英文单词",
			Words:            []string{"red", "blue", "green", "yellow", "black", "white"},
			WordTranslations: []string{"红色", "蓝色", "绿色", "黄色", "黑色", "白色"},
			FolderName:       "词汇练习/颜色类",
		},
		{
			Type: "matching", Sentence: "水果单词", Translation: "学习常见水果的英文单词",
			Words:            []string{"apple", "banana", "orange", "grape", "strawberry"},
			WordTranslations: []string{"苹果", "香蕉", "橙子", "葡萄", "草莓"},
			FolderName:       "词汇练习/食物类",
		},
	},
	"spelling": {
		{
			Type: "spelling", Sentence: "apple", Translation: "苹果", Word: "apple", Phonetic: "/ˈæp.əl/",
			Meaning: "苹果", Distractors: []string{"香蕉", "橙子", "葡萄"}, FolderName: "单词拼写/水果类",
		},
		{
			Type: "spelling", Sentence: "dog", Translation: "狗", Word: "dog", Phonetic: "/dɔːɡ/",
			Meaning: "狗", Distractors: []string{"猫", "鸟", "鱼"}, FolderName: "单词拼写/动物类",
		},
		{
			Type: "spelling", Sentence: "red", Translation: "红色", Word: "red", Phonetic: "/red/",
			Meaning: "红色", Distractors: []string{"蓝色", "绿色", "黄色"}, FolderName: "单词拼写/颜色类",
		},
	},
	"fill-in-blank": {
		{Type: "fill-in-blank", Sentence: "I ___ to school every day", Translation: "我每天去上学", Blanks: []string{"go"}, FolderName: "填空练习/日常生活"},
		{Type: "fill-in-blank", Sentence: "She ___ a book in the library", Translation: "她在图书馆读书", Blanks: []string{"reads"}, FolderName: "填空练习/学习活动"},
		{Type: "fill-in-blank", Sentence: "My ___ is in the kitchen", Translation: "我妈妈在厨房", Blanks: []string{"mother"}, FolderName: "填空练习/家庭成员"},
	},
	"dialogue": {
		{Type: "dialogue", Question: "What is your name", Answer: "My name is Tom", Translation: "你叫什么名字？我叫汤姆。", ShowQuestion: show(true), FolderName: "对话练习/自我介绍"},
		{Type: "dialogue", Question: "How old are you", Answer: "I am eight years old", Translation: "你多大了？我八岁了。", ShowQuestion: show(true), FolderName: "对话练习/日常问候"},
		{Type: "dialogue", Question: "What do you like", Answer: "I like reading books", Translation: "你喜欢什么？我喜欢读书。", ShowQuestion: show(false), FolderName: "对话练习/兴趣爱好"},
	},
	"mixed": {
		{Type: "sentence-building", Sentence: "I love my family", Translation: "我爱我的家人", FolderName: "基础句型/家庭相关"},
		{
			Type: "matching", Sentence: "动物单词", Translation: "学习常见动物的英文单词",
			Words:            []string{"dog", "cat", "bird", "fish"},
			WordTranslations: []string{"狗", "猫", "鸟", "鱼"},
			FolderName:       "词汇练习/动物类",
		},
		{
			Type: "spelling", Sentence: "apple", Translation: "苹果", Word: "apple", Phonetic: "/ˈæp.əl/",
			Meaning: "苹果", Distractors: []string{"香蕉", "橙子", "葡萄"}, FolderName: "单词拼写/水果类",
		},
		{Type: "fill-in-blank", Sentence: "I ___ to school every day", Translation: "我每天去上学", Blanks: []string{"go"}, FolderName: "填空练习/日常生活"},
		{Type: "dialogue", Question: "What is your name", Answer: "My name is Tom", Translation: "你叫什么名字？我叫汤姆。", ShowQuestion: show(true), FolderName: "对话练习/自我介绍"},
		{Type: "sentence-building", Sentence: "What is your name", Translation: "你叫什么名字", FolderName: "日常问候"},
	},
}

// ExampleKinds lists the available example documents
func ExampleKinds() []string {
	kinds := make([]string, 0, len(examples))
	for k := range examples {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// Example renders the named example document in the given format
func Example(kind string, format Format) ([]byte, error) {
	records, ok := examples[kind]
	if !ok {
		return nil, fmt.Errorf("unknown example %q (available: %v)", kind, ExampleKinds())
	}
	switch format {
	case FormatYAML:
		return yaml.Marshal(records)
	case FormatJSON, FormatAuto:
		return json.MarshalIndent(records, "", "  ")
	default:
		return nil, fmt.Errorf("unsupported document format %q", format)
	}
}
