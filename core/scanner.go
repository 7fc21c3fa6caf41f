package core

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
)

type Scanner struct {
	reader  *bufio.Reader
	decoder *encoding.Decoder
	line    int
	LastTag Tag
	err     error
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		reader: bufio.NewReader(r),
	}
}

// SetDecoder 设置字符串值的解码器，AC1021 之前的文件按 $DWGCODEPAGE 编码存储
func (s *Scanner) SetDecoder(decoder *encoding.Decoder) {
	s.decoder = decoder
}

// Next 读取下一组标签；返回 false 时 LastTag 的 Code 为 NoCode，
// 调用方据此停止，不会把上一组标签再处理一遍
func (s *Scanner) Next() bool {
	if !s.next() {
		s.LastTag = Tag{Code: NoCode}
		return false
	}
	return true
}

func (s *Scanner) next() bool {
	// 1. 读取 Code 行
	codeLine, err := s.reader.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			s.err = err
		}
		return false
	}
	s.line++

	codeStr := strings.TrimSpace(codeLine)
	if codeStr == "" { // 跳过空行
		return s.next()
	}

	code, err := strconv.Atoi(codeStr)
	if err != nil {
		s.err = fmt.Errorf("line %d: invalid group code %q: %w", s.line, codeStr, err)
		return false
	}

	// 2. 读取 Value 行
	valueLine, err := s.reader.ReadString('\n')
	if err != nil && (err != io.EOF || valueLine == "") {
		// Value 行如果 EOF 也是不完整的
		s.err = fmt.Errorf("line %d: missing value for group code %d: %w", s.line, code, io.ErrUnexpectedEOF)
		return false
	}
	s.line++

	// 去掉行尾的换行符，但保留 Value 开头的空格（DXF 规范要求）
	value := strings.TrimRight(valueLine, "\r\n")
	if s.decoder != nil && !isASCII(value) {
		if decoded, err := s.decoder.String(value); err == nil {
			value = decoded
		}
	}

	s.LastTag = Tag{Code: code, Value: value}
	return true
}

func (s *Scanner) Err() error {
	return s.err
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
