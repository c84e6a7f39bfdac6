package config

var LoadDotenvFile = loadDotenvFile
